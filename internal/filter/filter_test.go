package filter

import "testing"

const payload = `{
	"original_prompt": "sushi near the louvre",
	"llm_query_extracted": "sushi Louvre Paris",
	"map_interactive_link": "https://maps/dir?q",
	"map_embed_iframe_url": "https://maps/embed?q"
}`

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr bool
	}{
		{
			name:  "empty query passes body through",
			query: "",
			want:  payload,
		},
		{
			name:  "string field prints unquoted",
			query: "map_interactive_link",
			want:  "https://maps/dir?q",
		},
		{
			name:  "missing field yields null",
			query: "nonexistent",
			want:  "null",
		},
		{
			name:    "invalid expression",
			query:   "[invalid",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(payload, tt.query)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_InvalidJSON(t *testing.T) {
	if _, err := Apply("not json", "foo"); err == nil {
		t.Error("expected error for non-JSON body")
	}
}

func TestIsValidJMESPath(t *testing.T) {
	if !IsValidJMESPath("llm_query_extracted") {
		t.Error("valid expression rejected")
	}
	if IsValidJMESPath("[broken") {
		t.Error("invalid expression accepted")
	}
}
