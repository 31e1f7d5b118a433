package models

import "testing"

func TestValidDifficulty(t *testing.T) {
	for _, d := range []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced} {
		if !ValidDifficulty(d) {
			t.Errorf("%q rejected", d)
		}
	}
	for _, d := range []string{"", "expert", "Beginner", "BEGINNER"} {
		if ValidDifficulty(d) {
			t.Errorf("%q accepted", d)
		}
	}
}

func TestValidResourceType(t *testing.T) {
	for _, rt := range []string{ResourceVideo, ResourceArticle, ResourceDocumentation, ResourceInteractiveLab, ResourceBook} {
		if !ValidResourceType(rt) {
			t.Errorf("%q rejected", rt)
		}
	}
	for _, rt := range []string{"", "podcast", "Video", "interactive_lab"} {
		if ValidResourceType(rt) {
			t.Errorf("%q accepted", rt)
		}
	}
}
