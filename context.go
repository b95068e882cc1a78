package arena

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// ErrorBufferSize bounds the length of a context's stored error message.
const ErrorBufferSize = 256

// Context pairs a long-lived "global" arena with a "temp" arena that backs
// a ScratchPool, and carries per-context state for the layers built on top
// of the allocator: a bounded error message and extension data slots.
//
// Like everything else in this package, a Context is single-threaded.
type Context struct {
	global     *Arena
	temp       *Arena
	ownsGlobal bool
	pool       *ScratchPool
	logger     log.Logger

	lastErr string
	extData []any
}

// ContextOption configures a Context at creation time.
type ContextOption func(*Context)

// WithGlobalArena makes the context borrow a caller-owned arena for
// long-lived allocations instead of creating its own. The caller keeps
// ownership; Destroy will not release it.
func WithGlobalArena(a *Arena) ContextOption {
	return func(c *Context) {
		c.global = a
	}
}

// WithLogger attaches a logger for context lifecycle and scratch pool
// diagnostics. The default is a nop logger; allocation paths never log.
func WithLogger(l log.Logger) ContextOption {
	return func(c *Context) {
		c.logger = l
	}
}

// ExtensionInfo describes a context extension: optional hooks run when a
// context is created and destroyed, producing and disposing the
// extension's per-context data.
type ExtensionInfo struct {
	Name       string
	Initialize func() any
	Cleanup    func(any)
}

var (
	extensionRegistry []ExtensionInfo
	currentContext    *Context
)

// RegisterExtension adds an extension to the process-wide registry and
// returns its id. Contexts created afterwards carry a data slot for it.
// Registration is not goroutine-safe; register during program setup.
func RegisterExtension(info ExtensionInfo) int {
	extensionRegistry = append(extensionRegistry, info)
	return len(extensionRegistry) - 1
}

// SetCurrentContext installs ctx as the package-level current context.
// Pass nil to clear it.
func SetCurrentContext(ctx *Context) {
	currentContext = ctx
}

// CurrentContext returns the context installed by SetCurrentContext, or
// nil if none is set.
func CurrentContext() *Context {
	return currentContext
}

// NewContext creates a context with default-sized arenas. Unless
// WithGlobalArena is given, the global arena is created and owned by the
// context; the temp arena and its scratch pool are always owned.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(c)
	}
	if c.global == nil {
		c.global = NewArena(0)
		c.ownsGlobal = true
	}
	c.temp = NewArena(0)
	c.pool = NewScratchPool(c.temp)

	c.extData = make([]any, len(extensionRegistry))
	for i, ext := range extensionRegistry {
		if ext.Initialize != nil {
			c.extData[i] = ext.Initialize()
		}
	}

	level.Debug(c.logger).Log("msg", "context created", "owns_global", c.ownsGlobal)
	return c
}

// Destroy runs extension cleanup and releases the context's owned arenas.
// A borrowed global arena is left untouched. If the context is current it
// is cleared.
func (c *Context) Destroy() {
	if currentContext == c {
		currentContext = nil
	}
	for i, ext := range extensionRegistry {
		if i >= len(c.extData) {
			break
		}
		if ext.Cleanup != nil && c.extData[i] != nil {
			ext.Cleanup(c.extData[i])
		}
	}
	c.extData = nil
	c.temp.Release()
	if c.ownsGlobal {
		c.global.Release()
	}
	level.Debug(c.logger).Log("msg", "context destroyed")
}

// GlobalArena returns the context's long-lived arena.
func (c *Context) GlobalArena() *Arena {
	return c.global
}

// TempArena returns the arena backing the context's scratch pool.
func (c *Context) TempArena() *Arena {
	return c.temp
}

// Alloc allocates n bytes from the global arena.
func (c *Context) Alloc(n int) []byte {
	return c.global.AllocBytes(n)
}

// Calloc allocates n zeroed bytes from the global arena.
func (c *Context) Calloc(n int) []byte {
	return c.global.CallocBytes(n)
}

// TempAlloc allocates n bytes from the temp arena. Temp allocations live
// until the temp arena is rewound by a scratch session or reset wholesale.
func (c *Context) TempAlloc(n int) []byte {
	return c.temp.AllocBytes(n)
}

// ScratchBegin obtains a scratch session from the context's pool.
func (c *Context) ScratchBegin() (Scratch, error) {
	s, err := c.pool.Get()
	if err != nil {
		level.Debug(c.logger).Log("msg", "scratch begin failed", "err", err)
		c.Errorf("scratch begin: %v", err)
		return s, err
	}
	return s, nil
}

// ScratchEnd returns a scratch session to the pool and invalidates the
// caller's handle. The session's memory is reclaimed lazily, when the
// pool slot is next reused.
func (c *Context) ScratchEnd(s *Scratch) {
	if s == nil || s.arena == nil {
		return
	}
	c.pool.Put(*s)
	s.arena = nil
	s.marker = noMarker
}

// ScratchPool returns the context's pool, for inspection.
func (c *Context) ScratchPool() *ScratchPool {
	return c.pool
}

// Errorf formats and stores the context's error message, truncated to
// ErrorBufferSize bytes.
func (c *Context) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > ErrorBufferSize {
		msg = msg[:ErrorBufferSize]
	}
	c.lastErr = msg
}

// LastError returns the stored error message, or "" if none.
func (c *Context) LastError() string {
	return c.lastErr
}

// ClearError discards the stored error message.
func (c *Context) ClearError() {
	c.lastErr = ""
}

// ExtensionData returns the per-context data slot for the extension id
// returned by RegisterExtension, or nil if the id is out of range for
// this context.
func (c *Context) ExtensionData(id int) any {
	if id < 0 || id >= len(c.extData) {
		return nil
	}
	return c.extData[id]
}
