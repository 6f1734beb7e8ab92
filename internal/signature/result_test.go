package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantKind Kind
		wantText string
	}{
		{
			name:     "bare string",
			body:     `"class Extract(dspy.Signature):\n    text: str = dspy.InputField()"`,
			wantKind: KindText,
			wantText: "class Extract(dspy.Signature):\n    text: str = dspy.InputField()",
		},
		{
			name:     "bare string kept verbatim with surrounding space",
			body:     `"  padded  "`,
			wantKind: KindText,
			wantText: "  padded  ",
		},
		{
			name:     "code field",
			body:     `{"code": "X"}`,
			wantKind: KindCode,
			wantText: "X",
		},
		{
			name:     "code wins over signature",
			body:     `{"signature": "S", "code": "C"}`,
			wantKind: KindCode,
			wantText: "C",
		},
		{
			name:     "signature field",
			body:     `{"signature": "S", "extra": 1}`,
			wantKind: KindSignature,
			wantText: "S",
		},
		{
			name:     "empty code falls through to signature",
			body:     `{"code": "", "signature": "S"}`,
			wantKind: KindSignature,
			wantText: "S",
		},
		{
			name:     "null code falls through to signature",
			body:     `{"code": null, "signature": "S"}`,
			wantKind: KindSignature,
			wantText: "S",
		},
		{
			name:     "structured code is pretty-printed",
			body:     `{"code": {"inputs": ["text"]}}`,
			wantKind: KindCode,
			wantText: "{\n  \"inputs\": [\n    \"text\"\n  ]\n}",
		},
		{
			name:     "other object pretty-printed keeping key order",
			body:     `{"zeta": 1, "alpha": {"b": true}}`,
			wantKind: KindObject,
			wantText: "{\n  \"zeta\": 1,\n  \"alpha\": {\n    \"b\": true\n  }\n}",
		},
		{
			name:     "empty object",
			body:     `{}`,
			wantKind: KindObject,
			wantText: "{}",
		},
		{
			name:     "array",
			body:     `[1, 2]`,
			wantKind: KindObject,
			wantText: "[\n  1,\n  2\n]",
		},
		{
			name:     "number",
			body:     "42\n",
			wantKind: KindObject,
			wantText: "42",
		},
		{
			name:     "null",
			body:     `null`,
			wantKind: KindObject,
			wantText: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantText, got.Text)
		})
	}
}

func TestNormalizeInvalidBody(t *testing.T) {
	for _, body := range []string{"", "{", "not json", `{"code": "X"} trailing`} {
		_, err := Normalize([]byte(body))
		assert.Error(t, err, "body %q", body)
		if err != nil {
			assert.Contains(t, err.Error(), "invalid response body")
		}
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "code", KindCode.String())
	assert.Equal(t, "signature", KindSignature.String())
	assert.Equal(t, "object", KindObject.String())
	assert.Equal(t, "kind(9)", Kind(9).String())
}
