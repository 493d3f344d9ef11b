// Package templates renders HTML email bodies.
//
// Templates are templ.Component values so they share one Render entry point.
// Hand-built markup uses gomponents and is adapted with Component.
package templates
