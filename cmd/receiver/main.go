/*
NAME
  main.go

DESCRIPTION
  receiver reads a recorded WAV file, acquires and decodes the BFSK
  frame it carries, verifies its CRC, and decrypts it with
  AES-256-CTR, printing acquisition diagnostics and the recovered
  plaintext to stdout.

  Usage: receiver <file.wav>

AUTHOR
  David Sutton <davidsutton@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main is the receiver CLI: recorded wav in, recovered
// plaintext out.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/Hossein-sfa/Robust-Audio-Link/codec/wav"
	"github.com/Hossein-sfa/Robust-Audio-Link/internal/logging"
	"github.com/Hossein-sfa/Robust-Audio-Link/modem"
)

// Logging configuration.
const (
	logPath      = "receiver.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: receiver <file.wav>")
		os.Exit(1)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr))

	samples, sampleRate, err := wav.ReadMonoPCM(args[0])
	if err != nil {
		log.Error("could not read wav file", "path", args[0], "error", err)
		os.Exit(1)
	}

	plaintext, diag, err := modem.Decode(samples, sampleRate, modem.DemoKey, modem.DemoIV, log)
	fmt.Printf(
		"state=%s off=%d pre_score=%d/%d best_pos=%d invert=%v\n",
		diag.State, diag.Off, diag.PreambleScore, diag.PreambleBits, diag.BestPos, diag.Invert,
	)
	if err != nil {
		log.Error("decode failed", "state", diag.State.String(), "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(string(plaintext))
	log.Info("decode complete", "bytes", len(plaintext))
}
