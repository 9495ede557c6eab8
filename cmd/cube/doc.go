// Command cube draws a rotating cube with one color per face.
//
// Space pauses the rotation, F5 reloads the shaders and Escape quits.
package main
