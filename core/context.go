package core

// Context is the shared UI state coordinating inputs: at most one
// calendar panel is open process-wide, owned by whichever input last
// claimed focus. Reassignment is synchronous on the event loop, so no
// locking.
type Context struct {
	openID string
}

func NewContext() *Context {
	return &Context{}
}

// Claim makes id the owner of the open panel and returns the previous
// owner's id, "" when none was open. The caller is responsible for
// closing the previous owner's panel.
func (c *Context) Claim(id string) string {
	prev := c.openID
	if prev == id {
		return ""
	}
	c.openID = id
	return prev
}

// Release clears ownership, but only for the current owner; a stale
// release from an input that already lost the panel is ignored.
func (c *Context) Release(id string) {
	if c.openID == id {
		c.openID = ""
	}
}

func (c *Context) OpenID() string {
	return c.openID
}

func (c *Context) IsOpen(id string) bool {
	return c.openID != "" && c.openID == id
}
