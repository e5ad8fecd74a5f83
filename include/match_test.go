package include

import (
	"testing"

	"shinc/common"
)

func TestReplace(t *testing.T) {
	tests := []struct {
		name   string
		policy common.MatchPolicy
		text   string
		want   string
		count  int
	}{
		{"substring plain", common.MatchPolicySubstring, "#include Light\n", "L\n", 1},
		{"substring prefix", common.MatchPolicySubstring, "#include LightData\n", "LData\n", 1},
		{"substring none", common.MatchPolicySubstring, "void main(){}", "void main(){}", 0},
		{"token plain", common.MatchPolicyToken, "#include Light\n", "L\n", 1},
		{"token at end", common.MatchPolicyToken, "x\n#include Light", "x\nL", 1},
		{"token prefix rejected", common.MatchPolicyToken, "#include LightData\n", "#include LightData\n", 0},
		{"token digit rejected", common.MatchPolicyToken, "#include Light2\n", "#include Light2\n", 0},
		{"token underscore rejected", common.MatchPolicyToken, "#include Light_\n", "#include Light_\n", 0},
		{"token crlf", common.MatchPolicyToken, "#include Light\r\nx", "L\r\nx", 1},
		{"token mixed", common.MatchPolicyToken, "#include LightData #include Light x", "#include LightData L x", 1},
		{"token tab", common.MatchPolicyToken, "#include Light\tx", "L\tx", 1},
		{"token dash rejected", common.MatchPolicyToken, "#include Light-Data\n", "#include Light-Data\n", 0},
		{"token dot rejected", common.MatchPolicyToken, "#include Light.v2\n", "#include Light.v2\n", 0},
		{"token utf8 rejected", common.MatchPolicyToken, "#include Lighté\n", "#include Lighté\n", 0},
		{"token punctuation rejected", common.MatchPolicyToken, "#include Light;\n", "#include Light;\n", 0},
		{"line dash rejected", common.MatchPolicyLine, "#include Light-Data\n", "#include Light-Data\n", 0},
		{"line dot rejected", common.MatchPolicyLine, "#include Light.v2\n", "#include Light.v2\n", 0},
		{"line indented", common.MatchPolicyLine, "a\n\t  #include Light\nb", "a\n\t  L\nb", 1},
		{"line first", common.MatchPolicyLine, "#include Light", "L", 1},
		{"line trailing code rejected", common.MatchPolicyLine, "x = 1; #include Light\n", "x = 1; #include Light\n", 0},
		{"line comment rejected", common.MatchPolicyLine, "// #include Light\n", "// #include Light\n", 0},
		{"line prefix rejected", common.MatchPolicyLine, "#include LightData\n", "#include LightData\n", 0},
		{"many", common.MatchPolicyToken, "#include Light\n#include LightX\n#include Light\n", "L\n#include LightX\nL\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := replace(tt.text, "#include Light", "L", tt.policy)
			if got != tt.want {
				t.Errorf("replace() = %q, want %q", got, tt.want)
			}
			if n != tt.count {
				t.Errorf("replace() count = %d, want %d", n, tt.count)
			}
			found := index(tt.text, "#include Light", tt.policy) >= 0
			if found != (tt.count > 0) {
				t.Errorf("index() found = %v, want %v", found, tt.count > 0)
			}
		})
	}
}

func TestAtLineStart(t *testing.T) {
	text := "ab\n  cd"
	if !atLineStart(text, 0) {
		t.Error("position 0 must be at line start")
	}
	if atLineStart(text, 1) {
		t.Error("position 1 must not be at line start")
	}
	if !atLineStart(text, 5) {
		t.Error("position after indentation must be at line start")
	}
}
