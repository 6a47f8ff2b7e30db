package services

import (
	"reflect"
	"testing"
)

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
	}

	for _, tc := range cases {
		if got := totalPages(tc.total, tc.perPage); got != tc.want {
			t.Errorf("totalPages(%d, %d) = %d, want %d", tc.total, tc.perPage, got, tc.want)
		}
	}
}

func TestPageNavigation(t *testing.T) {
	p := &Page{Number: 2, PerPage: 5, Total: 12, TotalPages: 3}

	if !p.HasPrev() || !p.HasNext() {
		t.Fatalf("page 2 of 3 should have both neighbours")
	}
	if p.PrevPage() != 1 || p.NextPage() != 3 {
		t.Fatalf("PrevPage/NextPage = %d/%d, want 1/3", p.PrevPage(), p.NextPage())
	}

	first := &Page{Number: 1, TotalPages: 3}
	if first.HasPrev() {
		t.Error("first page should not have a previous page")
	}
	last := &Page{Number: 3, TotalPages: 3}
	if last.HasNext() {
		t.Error("last page should not have a next page")
	}
}

func TestWindows(t *testing.T) {
	cases := []struct {
		name    string
		current int
		pages   int
		want    []int
	}{
		{"single page", 1, 1, []int{1}},
		{"all pages fit", 2, 4, []int{1, 2, 3, 4}},
		{"gap after window", 1, 10, []int{1, 2, 3, 0, 10}},
		{"gaps on both sides", 6, 12, []int{1, 0, 5, 6, 7, 8, 0, 12}},
		{"window touches right edge", 10, 10, []int{1, 0, 9, 10}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &Page{Number: tc.current, TotalPages: tc.pages}
			if got := p.Windows(); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Windows() = %v, want %v", got, tc.want)
			}
		})
	}
}
