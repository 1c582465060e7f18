// Package model holds the record types shared by the repository, service and
// handler layers.
//
// Schema (read-only from this service):
//
//	"ClubEmail"     id, "clubName"
//	"MockInterview" "mockId", "clubId" -> "ClubEmail".id, "jobPosition", "jobDesc"
//	"UserAnswer"    "mockIdRef" -> "MockInterview"."mockId", "userEmail", rating, feedback
package model

// Club is the organizing entity that owns interviews.
type Club struct {
	ID   int64
	Name string
}

// AggregatedFeedback is one grouped row of the department query: every
// feedback of a user for one interview description and rating, space-joined.
//
// Feedback is nil when the group has no non-NULL feedback.
type AggregatedFeedback struct {
	UserEmail  string
	ClubName   string
	Department string
	TechStack  string
	Rating     int
	Feedback   *string
}

// DepartmentFeedback is one element of the /api/department response.
type DepartmentFeedback struct {
	UserEmail  string `json:"userEmail"`
	ClubName   string `json:"clubName"`
	Department string `json:"department"`
	TechStack  string `json:"techStack"`
	Rating     int    `json:"rating"`
	Feedback   string `json:"feedback"`
}
