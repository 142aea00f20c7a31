// Package imagepkg downloads, resizes and composes remote images.
package imagepkg
