package render

import "gopkg.in/yaml.v3"

func plain(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func quoted(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle}
}

func boolean(value bool) *yaml.Node {
	v := "false"
	if value {
		v = "true"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: v}
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

// emptyMapping renders as "{}".
func emptyMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Style: yaml.FlowStyle}
}

func sequence(values ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Content: values}
}

// merge returns the "<<: *anchor" pair referencing target. The key carries
// no tag, otherwise the encoder prints it as "!!merge <<".
func merge(target *yaml.Node) []*yaml.Node {
	key := &yaml.Node{Kind: yaml.ScalarNode, Value: "<<"}
	alias := &yaml.Node{Kind: yaml.AliasNode, Value: target.Anchor, Alias: target}
	return []*yaml.Node{key, alias}
}
