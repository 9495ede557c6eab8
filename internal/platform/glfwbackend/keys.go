//go:build !js

package glfwbackend

import "github.com/go-gl/glfw/v3.3/glfw"

var keyNames = map[glfw.Key]string{
	glfw.KeyEscape:    "Escape",
	glfw.KeySpace:     "Space",
	glfw.KeyEnter:     "Return",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyLeft:      "Left",
	glfw.KeyRight:     "Right",
	glfw.KeyUp:        "Up",
	glfw.KeyDown:      "Down",
	glfw.KeyF5:        "F5",
}

func keyLabel(key glfw.Key, scancode int) string {
	if name := glfw.GetKeyName(key, scancode); name != "" {
		return name
	}
	if name, ok := keyNames[key]; ok {
		return name
	}
	return "unknown"
}
