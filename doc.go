// Package spv is the root orchestration package: it ties together
// package decode (SPIR-V binary decoding) and package reflect (pipeline
// layout reflection) behind a small, stable API — Parse, ParseFile, and
// Reflect — the way the teacher pack's own root compiler package sits
// above its per-concern subpackages.
package spv
