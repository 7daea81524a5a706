package util

import (
	"reflect"
	"testing"
)

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		want    []int
		wantErr bool
	}{
		{
			name: "single value",
			spec: "5",
			want: []int{5},
		},
		{
			name: "simple range",
			spec: "1-5",
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "comma separated",
			spec: "1,3,5",
			want: []int{1, 3, 5},
		},
		{
			name: "mixed",
			spec: "1-3,5,7-9",
			want: []int{1, 2, 3, 5, 7, 8, 9},
		},
		{
			name: "with spaces",
			spec: "1 - 3, 5",
			want: []int{1, 2, 3, 5},
		},
		{
			name: "duplicates removed",
			spec: "1-3,2-4",
			want: []int{1, 2, 3, 4},
		},
		{
			name: "trailing comma tolerated",
			spec: "1,2,",
			want: []int{1, 2},
		},
		{
			name: "empty string",
			spec: "",
			want: nil,
		},
		{
			name:    "invalid - start > end",
			spec:    "5-1",
			wantErr: true,
		},
		{
			name:    "invalid - not a number",
			spec:    "abc",
			wantErr: true,
		},
		{
			name:    "invalid - open range",
			spec:    "10-",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandRange(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExpandRange(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExpandRange(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}

func TestCompactRange(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name:   "empty",
			values: nil,
			want:   "",
		},
		{
			name:   "singleton",
			values: []int{7},
			want:   "7",
		},
		{
			name:   "consecutive run",
			values: []int{1, 2, 3},
			want:   "1-3",
		},
		{
			name:   "mixed",
			values: []int{1, 2, 3, 5, 7, 8, 9},
			want:   "1-3,5,7-9",
		},
		{
			name:   "unsorted with duplicates",
			values: []int{9, 1, 3, 2, 8, 7, 3},
			want:   "1-3,7-9",
		},
		{
			name:   "adjacent runs stay separate",
			values: []int{1, 2, 4, 5},
			want:   "1-2,4-5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompactRange(tt.values); got != tt.want {
				t.Errorf("CompactRange(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func TestExpandCompactRoundTrip(t *testing.T) {
	values := []int{1, 2, 3, 5, 7, 8, 14, 20, 21, 22}
	got, err := ExpandRange(CompactRange(values))
	if err != nil {
		t.Fatalf("ExpandRange returned error: %v", err)
	}
	if !reflect.DeepEqual(got, values) {
		t.Errorf("round trip = %v, want %v", got, values)
	}
}

func TestJoinInts(t *testing.T) {
	if got := JoinInts([]int{1, 2, 5}); got != "1, 2, 5" {
		t.Errorf("JoinInts = %q, want %q", got, "1, 2, 5")
	}
	if got := JoinInts(nil); got != "" {
		t.Errorf("JoinInts(nil) = %q, want empty", got)
	}
}

func TestSortedInts(t *testing.T) {
	got := SortedInts([]int{5, 1, 3, 1, 5})
	want := []int{1, 3, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SortedInts = %v, want %v", got, want)
	}
}
