package pairfind

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeLine(t *testing.T) {
	nums, target, err := DecodeLine(strings.NewReader("2 7 11 15 9\n"))
	if err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if target != 9 {
		t.Fatalf("target = %d, want 9", target)
	}
	want := []int{2, 7, 11, 15}
	if len(nums) != len(want) {
		t.Fatalf("nums = %v, want %v", nums, want)
	}
	for i := range want {
		if nums[i] != want[i] {
			t.Fatalf("nums = %v, want %v", nums, want)
		}
	}
}

func TestDecodeLineMixedWhitespace(t *testing.T) {
	nums, target, err := DecodeLine(strings.NewReader("-3\t1   -2\n"))
	if err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if target != -2 {
		t.Fatalf("target = %d, want -2", target)
	}
	if len(nums) != 2 || nums[0] != -3 || nums[1] != 1 {
		t.Fatalf("nums = %v, want [-3 1]", nums)
	}
}

func TestDecodeLineSingleInteger(t *testing.T) {
	nums, target, err := DecodeLine(strings.NewReader("42\n"))
	if err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if len(nums) != 0 {
		t.Fatalf("nums = %v, want empty", nums)
	}
	if target != 42 {
		t.Fatalf("target = %d, want 42", target)
	}
}

func TestDecodeLineWithoutTrailingNewline(t *testing.T) {
	nums, target, err := DecodeLine(strings.NewReader("3 2 4 6"))
	if err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if target != 6 || len(nums) != 3 {
		t.Fatalf("nums = %v target = %d, want [3 2 4] 6", nums, target)
	}
}

func TestDecodeLineIgnoresLaterLines(t *testing.T) {
	nums, target, err := DecodeLine(strings.NewReader("2 7 9\n100 100 200\n"))
	if err != nil {
		t.Fatalf("decode line: %v", err)
	}
	if target != 9 || len(nums) != 2 || nums[0] != 2 || nums[1] != 7 {
		t.Fatalf("nums = %v target = %d, want [2 7] 9", nums, target)
	}
}

func TestDecodeLineEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n", "   \n"} {
		_, _, err := DecodeLine(strings.NewReader(input))
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("input %q: err = %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestDecodeLineInvalidToken(t *testing.T) {
	_, _, err := DecodeLine(strings.NewReader("2 x 9\n"))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err = %v, want ErrInvalidToken", err)
	}
}
