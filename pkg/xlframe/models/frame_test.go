package models

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	frame, err := NewFrame(
		[]string{"Name", "Age"},
		[][]string{{"Ann", "30"}, {"Bo", "25"}},
		1,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Age"}, frame.Headers())
	assert.Equal(t, 2, frame.NumRows())
	assert.Equal(t, 2, frame.NumCols())
	assert.Equal(t, []string{"Ann", "Bo"}, frame.Column(0))
	assert.Equal(t, []string{"30", "25"}, frame.Column(1))
	assert.Equal(t, []string{"Ann", "30"}, frame.Row(0))
	assert.Equal(t, "25", frame.Cell(1, 1))
}

func TestNewFrameShapeMismatch(t *testing.T) {
	_, err := NewFrame(
		[]string{"A", "B", "C"},
		[][]string{{"1", "2", "3"}, {"4", "5"}},
		1,
	)
	require.Error(t, err)

	var shapeErr *ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 1, shapeErr.RowIndex)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

func TestNewFrameParallelMatchesSequential(t *testing.T) {
	headers := []string{"A", "B", "C", "D", "E"}
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = make([]string, len(headers))
		for j := range rows[i] {
			rows[i][j] = string(rune('a'+j)) + "-" + string(rune('0'+i%10))
		}
	}

	sequential, err := NewFrame(headers, rows, 1)
	require.NoError(t, err)
	parallel, err := NewFrame(headers, rows, 4)
	require.NoError(t, err)

	assert.Equal(t, sequential.Headers(), parallel.Headers())
	for c := 0; c < len(headers); c++ {
		assert.True(t, reflect.DeepEqual(sequential.Column(c), parallel.Column(c)),
			"column %d differs between sequential and parallel assembly", c)
	}
}

func TestFrameColumnByName(t *testing.T) {
	frame, err := NewFrame([]string{"X", "Y"}, [][]string{{"1", "2"}}, 1)
	require.NoError(t, err)

	col, ok := frame.ColumnByName("Y")
	require.True(t, ok)
	assert.Equal(t, []string{"2"}, col)

	_, ok = frame.ColumnByName("Z")
	assert.False(t, ok)
}

func TestFrameEmpty(t *testing.T) {
	frame, err := NewFrame([]string{"A"}, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, frame.NumRows())
	assert.Equal(t, 1, frame.NumCols())
	assert.Nil(t, frame.Row(0))
	assert.Equal(t, "", frame.Cell(0, 0))
}
