package shadow

import "sync"

// Headless is a shadow target without GPU storage. It tracks binds so that
// shadow passes can run and be inspected without a GL context.
type Headless struct {
	mu         sync.Mutex
	resolution int32
	bound      bool
	binds      int
	clears     int
	destroyed  int
}

// NewHeadless creates a headless target. Non-positive resolutions fall back
// to DefaultResolution.
func NewHeadless(resolution int32) *Headless {
	if resolution <= 0 {
		resolution = DefaultResolution
	}
	return &Headless{resolution: resolution}
}

// Resolution returns the edge length the target pretends to have.
func (h *Headless) Resolution() int32 {
	return h.resolution
}

// Bind marks the target as the current depth target.
func (h *Headless) Bind() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bound = true
	h.binds++
}

// Clear records a depth clear.
func (h *Headless) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clears++
}

// Unbind clears the bound state.
func (h *Headless) Unbind() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bound = false
}

// BindTexture is a no-op.
func (h *Headless) BindTexture(uint32) {}

// Destroy records the release.
func (h *Headless) Destroy() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.destroyed++
	h.bound = false
}

// Bound reports whether the target is between Bind and Unbind.
func (h *Headless) Bound() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.bound
}

// Binds returns how many times Bind was called.
func (h *Headless) Binds() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.binds
}

// Clears returns how many times Clear was called.
func (h *Headless) Clears() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.clears
}

// Destroyed returns how many times Destroy was called.
func (h *Headless) Destroyed() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.destroyed
}
