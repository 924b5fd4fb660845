package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"jpxls/internal/catalog"
	"jpxls/internal/compiler"
	"jpxls/internal/server"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// Version will be set during the build process using ldflags
var Version = "(dev) v0.0.0"

func main() {
	versionFlag := flag.Bool("version", false, "Print the version of the program")
	logfileFlag := flag.String("logfile", "", "Path to log file")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("jpxls language server version %s\n", Version)
		return
	}

	// Stdout carries the LSP wire, so logs either go to a file or nowhere.
	if *logfileFlag != "" {
		logFile, err := os.OpenFile(*logfileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		log.SetOutput(logFile)
		log.SetFlags(log.Ldate | log.Ltime | log.Llongfile)
		log.Println("Starting jpxls language server...")
		commonlog.Configure(2, logfileFlag)
	} else {
		log.SetOutput(io.Discard)
		commonlog.Configure(0, nil)
	}

	ls := server.NewServer(catalog.Builtin(), compiler.New(), Version)
	if err := ls.RunStdio(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
