// Package rent provides the domain entity and business logic for motorcycle
// rental periods. It implements the VehicleRent aggregate root and the fixed
// table of rental plans.
//
// Key business rules:
//   - Plans of 7, 15, 30, 45 and 50 days are offered, each with its own
//     daily rate; longer plans are cheaper per day
//   - The rental period must cover the full plan length in whole days
//   - The daily rate is frozen on the rental at creation
//   - Overlap between rental windows is inclusive on both ends
//
// Validation failures are accumulated and reported together through the
// results package instead of stopping at the first problem.
package rent
