// Command mandelbrot renders the Mandelbrot set in a fragment shader.
//
// Drag with the left button or use the arrow keys to pan. The wheel and +/-
// zoom at the cursor and R resets the view. F5 reloads the shaders and Escape
// quits.
package main
