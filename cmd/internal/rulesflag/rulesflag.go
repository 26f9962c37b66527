// Package rulesflag binds the optional rules to command-line flags.
package rulesflag

import (
	"flag"

	"github.com/checkers-go/checkers/checkers"
)

func Register(flags *flag.FlagSet, r *checkers.Rules) {
	flags.BoolVar(&r.MandatoryCapture, "mandatory-capture", false, "force a capture whenever one is available")
	flags.BoolVar(&r.MenCaptureBackward, "backward-capture", false, "let men capture backwards")
}
