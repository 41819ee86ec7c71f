// Package orbit provides the scene model and per-frame update logic of the
// orrery viewer.
//
// A scene is a set of orbiting bodies arranged around a stationary center:
//
//   - [Factory]: builds bodies and their orbital paths
//   - [Session]: owns one scene, its hover state and its frame update
//   - [Picker]: ray intersection against a body group, supplied by the renderer
//   - [Camera] and [Controls]: perspective projection and orbit controls
//
// # Example
//
//	cam := orbit.NewCamera(16.0 / 9.0)
//	s := orbit.New(orbit.DefaultConfig(), &orbit.RayPicker{Camera: cam})
//	s.BuildScene(items)
//	for running {
//		delta := s.Tick(dt)
//		draw(s.Root(), delta)
//	}
//
// # Thread Safety
//
// A Session is NOT thread-safe. Pointer handlers and Tick are expected to run
// on the same goroutine, the way a window event loop delivers them.
package orbit
