// Package build is the orchestrator contract for a loaded site descriptor.
//
// A Context carries one descriptor through one build invocation. Resolve turns
// the descriptor's plugin activations into a Plan, looking each resolve
// identifier up in a plugin.Registry and decoding its options with that
// plugin's schema. Run then walks the plan strictly in activation order.
//
// Every error here is fatal to the build: nothing is retried and no step runs
// once an earlier step or the resolution itself has failed.
package build
