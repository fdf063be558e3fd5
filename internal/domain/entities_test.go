package domain

import "testing"

func TestDecodeEntities(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "What is 2 &lt; 3?", want: "What is 2 < 3?"},
		{in: "&quot;Hello&quot; &gt; world", want: `"Hello" > world`},
		{in: "Don&#039;t Panic", want: "Don't Panic"},
		{in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{in: "Pok&eacute;mon", want: "Pokémon"},
		{in: "&ldquo;quoted&rdquo;&hellip;", want: "“quoted”…"},
		{in: "plain text", want: "plain text"},
		{in: "&copy; stays escaped", want: "&copy; stays escaped"},
	}
	for _, tc := range cases {
		if got := DecodeEntities(tc.in); got != tc.want {
			t.Fatalf("DecodeEntities(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDecodeEntitiesDoesNotDoubleDecode(t *testing.T) {
	if got := DecodeEntities("&amp;lt;"); got != "&lt;" {
		t.Fatalf("expected &lt;, got %q", got)
	}
	if got := DecodeEntities("&amp;amp;"); got != "&amp;" {
		t.Fatalf("expected &amp;, got %q", got)
	}
	if got := DecodeEntities("&amp;eacute;"); got != "&eacute;" {
		t.Fatalf("expected &eacute;, got %q", got)
	}
}

func TestDecodeEntitiesIdempotentWithoutEntities(t *testing.T) {
	once := DecodeEntities("Rock &amp; Roll")
	if twice := DecodeEntities(once); twice != once {
		t.Fatalf("expected idempotent decode, got %q then %q", once, twice)
	}
}
