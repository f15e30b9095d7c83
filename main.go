package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/worldsaround/assets"
	"github.com/milk9111/worldsaround/camera"
	"github.com/milk9111/worldsaround/common"
	"github.com/milk9111/worldsaround/levels"
	"github.com/milk9111/worldsaround/logging"
	"github.com/milk9111/worldsaround/prefabs"
	"github.com/milk9111/worldsaround/profile"
	"github.com/milk9111/worldsaround/scene"
	"github.com/milk9111/worldsaround/scenes"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", levels.Default, "level file inside the levels directory")
	profileName := flag.String("profile", profile.Slots[0], "profile to start with")
	profilesDir := flag.String("profiles-dir", defaultProfilesDir(), "directory profiles are saved in")
	watch := flag.Bool("watch", false, "reload levels, tunables and scripts when they change on disk")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	images := assets.NewImageCache(nil)
	fonts := assets.NewFontCache()
	a, err := assets.Load(images, fonts)
	if err != nil {
		logger.Fatal("load assets", zap.Error(err))
	}
	music, err := assets.LoadMusic(assets.ThemeMusic)
	if err != nil {
		logger.Fatal("load music", zap.String("path", assets.ThemeMusic), zap.Error(err))
	}

	tunables, err := prefabs.LoadTunables()
	if err != nil {
		logger.Fatal("load tunables", zap.Error(err))
	}

	store := profile.NewStore(*profilesDir)
	prof, err := store.Load(*profileName)
	if err != nil {
		logger.Warn("load profile, using defaults", zap.String("profile", *profileName), zap.Error(err))
		prof = profile.Default(*profileName)
	}

	levelsDir := ""
	var watcher *prefabs.Watcher
	if *watch {
		levelsDir = "levels"
		watcher, err = prefabs.NewWatcher(levelsDir, prefabs.Dir)
		if err != nil {
			logger.Warn("watch content", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	ctx := &scene.Context{
		Log:       logger,
		Images:    images,
		Fonts:     fonts,
		Assets:    a,
		Camera:    camera.New(common.BaseWidth, common.BaseHeight, tunables.Zoom),
		Music:     music,
		Profiles:  store,
		Tunables:  tunables,
		Levels:    levels.FS(levelsDir),
		LevelName: *levelName,
		Scripts:   prefabs.LoadScript,
		Debug:     *debug,
	}
	ctx.SetProfile(prof)
	music.Play()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth*2, common.BaseHeight*2)
	ebiten.SetWindowTitle("Worlds Around")

	game := NewGame(ctx, scenes.NewMainMenu(), watcher)
	if err := run(game); err != nil {
		logger.Error("game stopped", zap.Error(err))
		ctx.SaveProfile()
		os.Exit(1)
	}
	ctx.SaveProfile()
}

// defaultProfilesDir keeps profiles next to the user's other settings,
// falling back to the working directory.
func defaultProfilesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "profiles"
	}
	return filepath.Join(dir, "worldsaround", "profiles")
}
