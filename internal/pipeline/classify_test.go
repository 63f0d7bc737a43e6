package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name         string
		rawPath      string
		generator    string
		relocations  map[string]string
		expectedKind OutputKind
		expectedPath string
	}{
		{
			name:         "simple source name",
			rawPath:      "Foo.java",
			generator:    "gen",
			expectedKind: KindSource,
			expectedPath: "Foo.java",
		},
		{
			name:         "qualified source name",
			rawPath:      "a.b.Foo.java",
			generator:    "gen",
			expectedKind: KindSource,
			expectedPath: "a.b.Foo.java",
		},
		{
			name:         "relocated simple source becomes a plain file",
			rawPath:      "Foo.java",
			generator:    "gen",
			relocations:  map[string]string{"gen": "root"},
			expectedKind: KindFile,
			expectedPath: "root/Foo.java",
		},
		{
			name:         "relocated qualified source nests under the root",
			rawPath:      "a.b.Foo.java",
			generator:    "gen",
			relocations:  map[string]string{"gen": "gen"},
			expectedKind: KindFile,
			expectedPath: "gen/a/b/Foo.java",
		},
		{
			name:         "relocation for another generator leaves source alone",
			rawPath:      "Foo.java",
			generator:    "gen",
			relocations:  map[string]string{"other": "root"},
			expectedKind: KindSource,
			expectedPath: "Foo.java",
		},
		{
			name:         "source suffix with a separator is a plain file",
			rawPath:      "out/Foo.java",
			generator:    "gen",
			expectedKind: KindFile,
			expectedPath: "out/Foo.java",
		},
		{
			name:         "resource prefix is stripped",
			rawPath:      "resources/META-INF/x.json",
			generator:    "gen",
			expectedKind: KindResource,
			expectedPath: "META-INF/x.json",
		},
		{
			name:         "everything else is a plain file",
			rawPath:      "out/readme.txt",
			generator:    "gen",
			expectedKind: KindFile,
			expectedPath: "out/readme.txt",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClassifier("", tc.relocations)
			kind, path := c.classify(tc.rawPath, tc.generator)
			assert.Equal(t, tc.expectedKind, kind)
			assert.Equal(t, tc.expectedPath, path)
		})
	}
}

func TestClassifyCustomSuffix(t *testing.T) {
	c := newClassifier(".kt", nil)
	kind, path := c.classify("Foo.kt", "gen")
	assert.Equal(t, KindSource, kind)
	assert.Equal(t, "Foo.kt", path)

	kind, _ = c.classify("Foo.java", "gen")
	assert.Equal(t, KindFile, kind)
}
