// Package driver provides the domain entity and business logic for the people
// who rent vehicles. It implements the DeliveryDriver aggregate root together
// with the CnhCategory value object for license categories.
//
// Key business rules:
//   - Names are trimmed and upper-cased, bounded to 2-250 characters
//   - CNPJ and CNH numbers are stored as bare digits with formatting stripped
//   - Only license categories A, B and AB are accepted
//   - Only drivers whose category includes A may operate motorcycles
//   - The license image is optional at registration and can be attached later
//
// Validation failures are accumulated and reported together through the
// results package instead of stopping at the first problem.
package driver
