package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/convkit"
	"github.com/erraggy/convkit/cmd/convkit/commands"
	"github.com/erraggy/convkit/internal/cliutil"
	"github.com/erraggy/convkit/internal/mcpserver"
)

// handlers maps each subcommand to its handler.
var handlers = map[string]func([]string) error{
	"catalog":  commands.HandleCatalog,
	"data":     commands.HandleData,
	"markdown": commands.HandleMarkdown,
	"units":    commands.HandleUnits,
	"currency": commands.HandleCurrency,
	"color":    commands.HandleColor,
	"numbase":  commands.HandleNumbase,
	"text":     commands.HandleText,
	"datetime": commands.HandleDatetime,
	"hash":     commands.HandleHash,
	"password": commands.HandlePassword,
	"qrcode":   commands.HandleQRCode,
	"document": commands.HandleDocument,
	"print":    commands.HandlePrint,
	"mcp":      handleMCP,
}

// commandNames lists every command in the order suggestions prefer them.
var commandNames = []string{
	"catalog", "data", "markdown", "units", "currency", "color", "numbase", "text",
	"datetime", "hash", "password", "qrcode", "document", "print", "mcp", "version", "help",
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("convkit v%s\n", convkit.Version())
		if len(os.Args) > 2 && (os.Args[2] == "-l" || os.Args[2] == "--long") {
			fmt.Print(convkit.BuildInfo())
		}
		return
	case "help", "-h", "--help":
		printUsage()
		return
	}

	handler, ok := handlers[command]
	if !ok {
		cliutil.Writef(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			cliutil.Writef(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		cliutil.Writef(os.Stderr, "\n")
		printUsage()
		os.Exit(1)
	}

	if err := handler(os.Args[2:]); err != nil {
		cliutil.Writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// handleMCP serves the MCP tools over stdio until the client disconnects or
// the process is interrupted.
func handleMCP(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("mcp command takes no arguments; configure it with CONVKIT_* environment variables")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

// suggestCommand returns the closest known command within an edit distance
// of two, or "" when nothing is that close.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := levenshtein(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	usage := `convkit - Everyday conversion utilities

Usage:
  convkit <command> [options]

Commands:
  data        Convert structured data between JSON, CSV, XML and YAML
  markdown    Convert Markdown to HTML and back
  document    Export text as TXT, HTML, CSV, JSON or Markdown
  print       Lay out text or images as a print-ready HTML page
  units       Convert length, weight, temperature, area and volume
  currency    Convert amounts using fixed sample exchange rates
  color       Convert colors between HEX, RGB and HSL
  numbase     Show numbers in decimal, binary, hex and octal
  text        Change case, encode, decode and count text
  datetime    Convert Unix timestamps, dates and time zones
  hash        Compute MD5 and SHA digests
  password    Generate or score passwords and passphrases
  qrcode      Build QR code image URLs
  catalog     Search the available converters
  mcp         Serve every converter as an MCP tool over stdio
  version     Show version information (--long for build details)
  help        Show this help message

Examples:
  convkit data -t yaml people.json
  convkit markdown README.md -o README.html
  convkit units -c temperature 100 celsius fahrenheit
  convkit color --rgb 255,0,0
  convkit password -l 24 --no-symbols

Run 'convkit <command> --help' for more information on a command.
`
	fmt.Print(usage)
}
