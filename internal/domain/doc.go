// Package domain defines the core value types and the calculator contract.
//
// No implementation code lives here, only shapes shared by the app and adapter layers.
package domain
