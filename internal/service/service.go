// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives validated
// data from the handler, performs business operations, and calls repository
// methods to read data.
package service
