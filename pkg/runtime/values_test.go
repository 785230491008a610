package runtime

import "testing"

func TestValueKinds(t *testing.T) {
	cases := []struct {
		value Value
		kind  Kind
	}{
		{StringValue{Val: "a"}, KindString},
		{BoolValue{Val: true}, KindBool},
		{IntValue{Val: 7}, KindInt},
		{NilValue{}, KindNil},
		{NewClosure("", nil, nil), KindClosure},
	}
	for _, tc := range cases {
		if tc.value.Kind() != tc.kind {
			t.Fatalf("expected %v, got %v", tc.kind, tc.value.Kind())
		}
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{StringValue{Val: "text"}, "text"},
		{BoolValue{Val: false}, "false"},
		{IntValue{Val: -42}, "-42"},
		{NilValue{}, "nothing"},
		{NewClosure("scale", nil, nil), "<function scale>"},
		{NewClosure("", nil, nil), "<function>"},
	}
	for _, tc := range cases {
		if got := Display(tc.value); got != tc.want {
			t.Fatalf("Display(%v) = %q, want %q", tc.value.Kind(), got, tc.want)
		}
	}
}
