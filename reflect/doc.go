// Package reflect walks a decoded module.Module to answer the question a
// graphics pipeline needs answered before it can bind resources to a
// shader: which module-scope variables does each entry point's function
// actually touch, and what descriptor-set-layout bindings and
// push-constant ranges does that imply.
//
// The Function Body Scan (CollectReferencedVariables) and the Pipeline
// Reflector (Reflect) are independent passes; Reflect calls the scan
// itself, so callers normally only need Reflect.
package reflect
