package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"proxylistgen/internal/collector"
	"proxylistgen/internal/conf"
	"proxylistgen/internal/logging"
	"proxylistgen/internal/notify"
	"proxylistgen/internal/registry"
	"proxylistgen/internal/storage"
	"proxylistgen/internal/util"
)

var log = logging.Logger

func main() {
	defer func() {
		code := 0
		if r := recover(); r != nil {
			if _, hasError := r.(error); hasError {
				code = 1
			}
		}
		logrus.Exit(code)
	}()

	if cf := conf.ConfigFileUsed(); cf != "" {
		log.Infof("config file used: %s", cf)
	}
	log.Info("welcome to the Proxy List Generator")

	start := time.Now()
	run()
	finish := time.Now()

	log.Infof("start time: %s", start.Format(util.StampFormat))
	log.Infof("finish time: %s", finish.Format(util.StampFormat))
	log.Infof("execution time: %s", util.FormatDuration(finish.Sub(start)))
	log.Info("program finished")

	if conf.Args.Sound.Enabled {
		notify.PlaySound(conf.Args.Sound.File)
	}
}

func run() {
	c := collector.New(
		registry.Default(),
		time.Duration(conf.Args.Network.HTTPTimeout)*time.Second,
	)
	outcome := c.Run()

	if outcome.AllEmpty() {
		log.Warn("no proxies were collected from any source")
		return
	}

	w := storage.Writer{
		Dir:    conf.Args.Output.Directory,
		Suffix: conf.Args.Output.FileSuffix,
	}
	paths, e := w.WriteAll(outcome, c.Order())
	if e != nil {
		log.Errorf("failed to save proxy lists: %+v", e)
		return
	}
	log.Infof("saved %d proxy list file(s)", len(paths))
}
