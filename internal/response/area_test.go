package response

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"arealookup/internal/model"
	"arealookup/pkg/json"
)

func TestNewAreas(t *testing.T) {
	areas := []*model.Area{
		{AreaID: 1, Pid: model.RootPid, Level: 1, AreaName: "Province A"},
		{AreaID: 3, Pid: model.RootPid, Level: 1, AreaName: "省份C"},
	}
	data, err := json.Marshal(NewAreas(areas))
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"areaId":1,"pid":-1,"level":1,"areaName":"Province A"},{"areaId":3,"pid":-1,"level":1,"areaName":"省份C"}]`,
		string(data))

	var got []*Area
	require.NoError(t, json.Unmarshal(data, &got))
	if diff := cmp.Diff(NewAreas(areas), got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewAreasEmpty(t *testing.T) {
	for _, areas := range [][]*model.Area{nil, {}} {
		data, err := json.Marshal(NewAreas(areas))
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}
}
