package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"net/http"
	_ "net/http/pprof"

	"github.com/faiface/mainthread"
	"github.com/icexin/learngl/lesson"
	"github.com/icexin/learngl/shaders"
	log "github.com/sirupsen/logrus"
)

var (
	pprofPort  = flag.String("pprof", "", "http pprof port")
	lessonName = flag.String("lesson", "", "lesson to open, defaults to the last one shown")
	listFlag   = flag.Bool("list", false, "list lessons and exit")
	shaderDir  = flag.String("shaders", "", "read GLSL files from this directory instead of the embedded copies")
	width      = flag.Int("width", 800, "window width")
	height     = flag.Int("height", 600, "window height")
	verbose    = flag.Bool("v", false, "debug logging")
)

// pickLesson prefers the flag, then the stored lesson, then the first one.
func pickLesson(flagName, stored string) string {
	if flagName != "" {
		return flagName
	}
	if _, err := lesson.Lookup(stored); err == nil {
		return stored
	}
	return lesson.Names()[0]
}

// sizeFlagsSet reports whether -width or -height was given on the command line.
func sizeFlagsSet(fs *flag.FlagSet) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "width" || f.Name == "height" {
			set = true
		}
	})
	return set
}

// pickWindowSize prefers the flags when given, then the stored size.
func pickWindowSize(w, h int, flagsSet bool, stored WindowState, ok bool) (int, int) {
	if flagsSet || !ok {
		return w, h
	}
	return int(stored.Width), int(stored.Height)
}

func listLessons() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, l := range lesson.All() {
		fmt.Fprintf(w, "%s\t%s\n", l.Name, l.Title)
	}
	w.Flush()
}

func openStore() *Store {
	if *dbpath == "" {
		return nil
	}
	store, err := NewStore(*dbpath)
	if err != nil {
		log.Warnf("state will not be saved: %v", err)
		return nil
	}
	return store
}

func run() {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	var stored string
	if store != nil {
		stored = store.Lesson()
	}
	name := pickLesson(*lessonName, stored)
	if _, err := lesson.Lookup(name); err != nil {
		log.Fatal(err)
	}

	app, err := NewApp(*width, *height, sizeFlagsSet(flag.CommandLine), name, store)
	if err != nil {
		log.Fatal(err)
	}
	tick := time.NewTicker(time.Second / 60)
	defer tick.Stop()
	for !app.ShouldClose() {
		<-tick.C
		app.Update()
	}
	app.Close()
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000000",
	})
	flag.Parse()
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}
	if *listFlag {
		listLessons()
		return
	}
	shaders.SetDir(*shaderDir)
	go func() {
		if *pprofPort != "" {
			log.Fatal(http.ListenAndServe(*pprofPort, nil))
		}
	}()
	mainthread.Run(run)
}
