package main

import (
	"log"
	"strings"
)

func main() {
	if err := executeCliCommand(); err != nil {
		// Provide more context-specific error messages
		errMsg := err.Error()
		if strings.Contains(errMsg, "configuration") {
			log.Fatalf("❌ Configuration error: %v\n\n💡 Tip: Run 'stunner config init' to create a sample configuration file", err)
		} else if strings.Contains(errMsg, "bind") || strings.Contains(errMsg, "resolve") {
			log.Fatalf("❌ Network error: %v\n\n🔧 Check the address, port, and firewall settings", err)
		} else {
			log.Fatalf("❌ Command failed: %v\n\n💡 For help, run: stunner --help", err)
		}
	}
}
