package composefn_test

import (
	"fmt"
	"strconv"
	"testing"

	"composefn"

	"github.com/stretchr/testify/require"
)

func TestIdentity_ReturnsInputUnchanged(t *testing.T) {
	v, err := composefn.Identity(42)

	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAfter_AppliesInnerFirst(t *testing.T) {
	double := composefn.Lift(func(v int) int { return v * 2 })
	toStr := composefn.Lift(strconv.Itoa)

	v, err := toStr.After(double)(21)

	require.NoError(t, err)
	require.Equal(t, "42", v)
}

func TestThen_AppliesReceiverFirst(t *testing.T) {
	double := composefn.Lift(func(v int) int { return v * 2 })
	toStr := composefn.Lift(strconv.Itoa)

	v, err := double.Then(toStr)(21)

	require.NoError(t, err)
	require.Equal(t, "42", v)
}

func TestAfter_IdentityIsNeutralOnBothSides(t *testing.T) {
	double := composefn.Lift(func(v int) int { return v * 2 })
	id := composefn.Fn(composefn.Identity)

	left, err := id.After(double)(21)
	require.NoError(t, err)

	right, err := double.After(id)(21)
	require.NoError(t, err)

	direct, err := double(21)
	require.NoError(t, err)

	require.Equal(t, direct, left)
	require.Equal(t, direct, right)
}

func TestAfter_InnerErrorStopsChain(t *testing.T) {
	inner := composefn.LiftErr(func(v int) (int, error) {
		return 0, fmt.Errorf("bad value %d", v)
	})

	outerCalled := false
	outer := composefn.Lift(func(v int) int {
		outerCalled = true
		return v
	})

	_, err := outer.After(inner)(7)

	require.EqualError(t, err, "bad value 7")
	require.False(t, outerCalled)
}

func TestAfter_OuterErrorPropagates(t *testing.T) {
	inner := composefn.Lift(func(v int) int { return v * 2 })
	outer := composefn.LiftErr(func(v int) (int, error) {
		return 0, fmt.Errorf("rejected %d", v)
	})

	_, err := outer.After(inner)(3)

	require.EqualError(t, err, "rejected 6")
}

func TestLift_WrongInputTypeFailsAtCallTime(t *testing.T) {
	double := composefn.Lift(func(v int) int { return v * 2 })

	_, err := double("not an int")

	var mismatch *composefn.TypeMismatchError
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, "int", mismatch.Want)
	require.Equal(t, "not an int", mismatch.Got)
}

func TestLiftErr_ForwardsResultAndError(t *testing.T) {
	parse := composefn.LiftErr(strconv.Atoi)

	v, err := parse("42")
	require.NoError(t, err)
	require.Equal(t, 42, v)

	_, err = parse("not a number")
	require.Error(t, err)
}
