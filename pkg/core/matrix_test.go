package core

import (
	"errors"
	"math"
	"testing"
)

func TestMatrix4_Multiply(t *testing.T) {
	a := Matrix4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix4{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix4{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix4_MultiplyByIdentity(t *testing.T) {
	a := Matrix4{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}
	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("Multiplying by identity should not change the matrix, got %v", got)
	}

	tuple := Tuple{1, 2, 3, 4}
	if got := Identity().MulTuple(tuple); got != tuple {
		t.Errorf("Identity applied to a tuple should not change it, got %v", got)
	}
}

func TestMatrix4_MulTuple(t *testing.T) {
	a := Matrix4{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := a.MulTuple(Tuple{1, 2, 3, 1})
	expected := Tuple{18, 24, 33, 1}
	if !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestMatrix4_Transpose(t *testing.T) {
	a := Matrix4{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix4{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 8, 5},
		{0, 8, 5, 8},
	}
	if got := a.Transpose(); !got.Equals(expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("Transposing identity should give identity, got %v", got)
	}
}

func TestMatrix_Determinants(t *testing.T) {
	m2 := Matrix2{
		{1, 5},
		{-3, 2},
	}
	if got := m2.Determinant(); got != 17 {
		t.Errorf("Expected 2x2 determinant 17, got %v", got)
	}

	m3 := Matrix3{
		{1, 2, 6},
		{-5, 8, -4},
		{2, 6, 4},
	}
	if got := m3.Cofactor(0, 0); got != 56 {
		t.Errorf("Expected cofactor 56, got %v", got)
	}
	if got := m3.Determinant(); got != -196 {
		t.Errorf("Expected 3x3 determinant -196, got %v", got)
	}

	m4 := Matrix4{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	if got := m4.Cofactor(0, 0); got != 690 {
		t.Errorf("Expected cofactor 690, got %v", got)
	}
	if got := m4.Determinant(); got != -4071 {
		t.Errorf("Expected 4x4 determinant -4071, got %v", got)
	}
}

func TestMatrix_SubmatrixMinorCofactor(t *testing.T) {
	m3 := Matrix3{
		{3, 5, 0},
		{2, -1, -7},
		{6, -1, 5},
	}
	sub := m3.Submatrix(1, 0)
	expected := Matrix2{
		{5, 0},
		{-1, 5},
	}
	if sub != expected {
		t.Errorf("Expected submatrix %v, got %v", expected, sub)
	}
	if got := m3.Minor(1, 0); got != 25 {
		t.Errorf("Expected minor 25, got %v", got)
	}
	if got := m3.Cofactor(0, 0); got != -12 {
		t.Errorf("Expected cofactor -12, got %v", got)
	}
	if got := m3.Cofactor(1, 0); got != -25 {
		t.Errorf("Expected cofactor -25, got %v", got)
	}

	m4 := Matrix4{
		{-6, 1, 1, 6},
		{-8, 5, 8, 6},
		{-1, 0, 8, 2},
		{-7, 1, -1, 1},
	}
	sub3 := m4.Submatrix(2, 1)
	expected3 := Matrix3{
		{-6, 1, 6},
		{-8, 8, 6},
		{-7, -1, 1},
	}
	if sub3 != expected3 {
		t.Errorf("Expected submatrix %v, got %v", expected3, sub3)
	}
}

func TestMatrix4_Inverse(t *testing.T) {
	a := Matrix4{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := a.Determinant(); got != 532 {
		t.Errorf("Expected determinant 532, got %v", got)
	}
	expected := Matrix4{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}
	if !inv.Equals(expected) {
		t.Errorf("Expected inverse %v, got %v", expected, inv)
	}
}

func TestMatrix4_InverseUndoesMultiplication(t *testing.T) {
	a := Matrix4{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix4{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}
	c := a.Multiply(b)

	bInv, err := b.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := c.Multiply(bInv); !got.Equals(a) {
		t.Errorf("Expected product times inverse to restore %v, got %v", a, got)
	}
}

func TestMatrix4_InverseSingular(t *testing.T) {
	singular := Matrix4{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}
	if got := singular.Determinant(); got != 0 {
		t.Fatalf("Expected determinant 0, got %v", got)
	}
	_, err := singular.Inverse()
	if err == nil {
		t.Fatal("Expected an error inverting a singular matrix")
	}
	if !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("Expected ErrSingularMatrix, got %v", err)
	}
}

func TestMatrix4_InverseRoundTripsTuples(t *testing.T) {
	transform := Identity().RotateX(math.Pi / 3).Scale(2, 2, 2).Translate(1, -2, 3)
	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	p := NewPoint(1.5, -4, 9.25)
	if got := inv.MulTuple(transform.MulTuple(p)); !got.Equals(p) {
		t.Errorf("Expected inverse to undo the transform, got %v", got)
	}
}
