// Package defaults resolves the final attribute set of an element from its
// layered sources.
//
// Layers are applied lowest priority first:
//
//  1. Registry defaults for the wildcard kind "*"
//  2. Registry defaults for the element kind
//  3. Default providers, in registration order
//  4. Theme providers, in registration order
//  5. Attributes set explicitly on the element
//
// Each layer overwrites the keys it supplies. A key explicitly set to nil
// stays nil and therefore suppresses every lower layer.
//
// The process-wide registry returned by Global is what elements consult when
// no registry is attached to them. Tests should call Reset when they touch it.
package defaults
