// Command triangle draws a triangle with a color per corner.
//
// Usage:
//
//	triangle [-config triangle.toml]
//
// The shaders are read from the paths in the settings file. A .wgsl path is
// translated to GLSL before compiling, see triangle.wgsl.toml. Escape quits
// and F5 reloads the shaders.
package main
