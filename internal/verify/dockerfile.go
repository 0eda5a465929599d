package verify

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/parser"
)

// Stage is one FROM section of a Dockerfile.
type Stage struct {
	Base string
	Name string
}

// Build summarises a parsed Dockerfile.
type Build struct {
	Stages []Stage
	// Cmd is the exec form of the final CMD instruction.
	Cmd []string
	// Run lists every RUN command line in order.
	Run []string
}

// Dockerfile parses content with the BuildKit Dockerfile parser and checks
// that it declares at least one stage and ends with a CMD.
func Dockerfile(content []byte) (*Build, error) {
	result, err := parser.Parse(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse Dockerfile: %w", err)
	}

	build := &Build{}
	children := result.AST.Children
	for _, child := range children {
		args := nodeArgs(child)
		switch strings.ToUpper(child.Value) {
		case "FROM":
			stage := Stage{}
			if len(args) > 0 {
				stage.Base = args[0]
			}
			if len(args) == 3 && strings.EqualFold(args[1], "as") {
				stage.Name = args[2]
			}
			build.Stages = append(build.Stages, stage)
		case "RUN":
			build.Run = append(build.Run, strings.Join(args, " "))
		case "CMD":
			build.Cmd = args
		}
	}

	if len(build.Stages) == 0 {
		return nil, errors.New("Dockerfile declares no FROM stage")
	}
	if len(children) == 0 || strings.ToUpper(children[len(children)-1].Value) != "CMD" {
		return nil, errors.New("Dockerfile does not end with a CMD instruction")
	}

	return build, nil
}

func nodeArgs(node *parser.Node) []string {
	var args []string
	for n := node.Next; n != nil; n = n.Next {
		args = append(args, n.Value)
	}
	return args
}
