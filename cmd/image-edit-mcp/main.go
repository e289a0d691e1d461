package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-edit-mcp/internal/safepath"
	"github.com/ironsheep/image-edit-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-edit-mcp - MCP server for in-place image editing")
			fmt.Println()
			fmt.Println("Usage: image-edit-mcp <image-root>")
			fmt.Println()
			fmt.Println("Arguments:")
			fmt.Println("  image-root       Directory the server may read and edit images in.")
			fmt.Println("                   All tool file names are resolved inside it.")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  IMAGE_EDIT_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: image-edit-mcp <image-root>")
		os.Exit(1)
	}

	root, err := safepath.New(os.Args[1])
	if err != nil {
		log.Fatalf("Invalid image root: %v", err)
	}

	if os.Getenv("IMAGE_EDIT_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Image Edit MCP Server v%s (built %s, commit %s), image root %s",
			Version, BuildTime, GitCommit, root.Dir())
	}

	srv := server.New(root)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
