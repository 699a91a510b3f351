package cli

import (
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/ardnew/lamb/lang"
	"github.com/ardnew/lamb/log"
)

type parserConfig struct {
	Strict   bool `default:"false"       help:"Fail when input remains after the expression." negatable:""`
	MaxDepth int  `default:"${maxDepth}" help:"Maximum function nesting depth (0 for no limit)."`
}

func (*parserConfig) vars() kong.Vars {
	return kong.Vars{
		"maxDepth": strconv.Itoa(lang.DefaultMaxDepth),
	}
}

func (*parserConfig) group() kong.Group {
	var group kong.Group

	group.Key = "parser"
	group.Title = "Parser options"

	return group
}

// options returns the parse options selected on the command line. Parses are
// traced through the default logger.
func (f *parserConfig) options() []lang.Option {
	return []lang.Option{
		lang.WithStrict(f.Strict),
		lang.WithMaxDepth(f.MaxDepth),
		lang.WithLogger(log.Default()),
	}
}
