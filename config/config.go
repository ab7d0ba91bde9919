package config

import "github.com/yohamta/donburi/ecs"

// Default is the render layer everything draws on.
const Default ecs.LayerID = iota

// AppConfig holds the demo window configuration.
type AppConfig struct {
	Width  int
	Height int
	Title  string
}

var C = AppConfig{
	Width:  800,
	Height: 600,
	Title:  "velloplay",
}
