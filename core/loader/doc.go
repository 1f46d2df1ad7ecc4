// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// # Manager
//
// The Manager holds the registry of available features. Register adds a
// feature and LoadAll mounts every enabled one, in registration order, on the
// router it is given. The dataset, matching and segments features are all
// wired this way by the start command.
package loader
