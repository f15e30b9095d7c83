package scene

import (
	"io/fs"

	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/camera"
	"github.com/milk9111/worldsaround/ecs/system"
	"github.com/milk9111/worldsaround/input"
	"github.com/milk9111/worldsaround/prefabs"
	"github.com/milk9111/worldsaround/profile"
	"go.uber.org/zap"
)

// Context is the state shared by every scene.
type Context struct {
	Log    *zap.Logger
	Images *assets.ImageCache
	Fonts  *assets.FontCache
	Assets *assets.Assets
	Camera *camera.Camera
	Music  *assets.Music

	Profiles *profile.Store
	Profile  *profile.Profile

	Tunables  prefabs.Tunables
	Levels    fs.FS
	LevelName string
	Scripts   system.ScriptSource

	// ContentChanged is set when a watched content file changed on disk.
	ContentChanged bool
	// Restart asks the level to reload from scratch on its next Enter.
	Restart bool
	// Lives is what remains of the current run.
	Lives int

	Debug bool

	events input.Queue
}

// Post queues ev for delivery to the current scene on the next frame.
func (c *Context) Post(ev input.Event) {
	c.events.Post(ev)
}

// Drain returns and clears the posted events.
func (c *Context) Drain() []input.Event {
	return c.events.Drain()
}

// SetProfile makes p the active profile and applies its volume.
func (c *Context) SetProfile(p *profile.Profile) {
	c.Profile = p
	c.Music.SetVolume(p.Music)
}

// SaveProfile writes the active profile, logging failures.
func (c *Context) SaveProfile() {
	if c.Profiles == nil || c.Profile == nil {
		return
	}
	if err := c.Profiles.Save(c.Profile); err != nil {
		c.Log.Warn("save profile", zap.String("profile", c.Profile.Name), zap.Error(err))
	}
}

// NewRun resets the lives counter and asks the level to start over.
func (c *Context) NewRun() {
	c.Lives = c.Tunables.Lives
	c.Restart = true
}
