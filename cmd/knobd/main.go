package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})

	if err := RootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
