package domain

import (
	"testing"

	"github.com/galraemalrae/weathertravel/internal/geo"
	"github.com/stretchr/testify/assert"
)

func sampleEvents() []EventRecord {
	return []EventRecord{
		{Title: "강남 페스티벌", Address: "서울특별시 강남구 테헤란로 1"},
		{Title: "판교 장터", Address: "경기도 성남시 분당구 판교역로 2"},
		{Title: "고성 공룡엑스포", Address: "경상남도 고성군 당항만로 3"},
		{Title: "고성 명태축제", Address: "강원특별자치도 고성군 거진읍 4"},
		{Title: "주소 없음", Address: ""},
	}
}

func TestFilterByRegion_Seoul(t *testing.T) {
	got := FilterByRegion(sampleEvents(), geo.Seoul)

	assert.Len(t, got, 1)
	assert.Equal(t, "강남 페스티벌", got[0].Title)
}

func TestFilterByRegion_GoseongStaysSeparate(t *testing.T) {
	events := sampleEvents()

	gyeongnam := FilterByRegion(events, geo.Gyeongnam)
	assert.Len(t, gyeongnam, 1)
	assert.Equal(t, "고성 공룡엑스포", gyeongnam[0].Title)

	gangwon := FilterByRegion(events, geo.Gangwon)
	assert.Len(t, gangwon, 1)
	assert.Equal(t, "고성 명태축제", gangwon[0].Title)
}

func TestFilterByRegion_Idempotent(t *testing.T) {
	once := FilterByRegion(sampleEvents(), geo.Gyeonggi)
	twice := FilterByRegion(once, geo.Gyeonggi)

	assert.Equal(t, once, twice)
}

func TestFilterByRegion_PreservesOrder(t *testing.T) {
	events := []EventRecord{
		{Title: "b", Address: "서울특별시 중구"},
		{Title: "a", Address: "서울특별시 종로구"},
		{Title: "c", Address: "부산광역시 해운대구"},
		{Title: "d", Address: "서울특별시 마포구"},
	}

	got := FilterByRegion(events, geo.Seoul)
	titles := make([]string, 0, len(got))
	for _, ev := range got {
		titles = append(titles, ev.Title)
	}
	assert.Equal(t, []string{"b", "a", "d"}, titles)
}

func TestFilterByRegion_Empty(t *testing.T) {
	assert.Empty(t, FilterByRegion(nil, geo.Seoul))
	assert.Empty(t, FilterByRegion([]EventRecord{}, geo.Jeju))
}

func TestMatchRegion(t *testing.T) {
	hit := MatchRegion(EventRecord{Address: "제주특별자치도 제주시"}, geo.Jeju)
	assert.Equal(t, geo.Jeju, hit.Region)

	miss := MatchRegion(EventRecord{Address: "제주특별자치도 제주시"}, geo.Busan)
	assert.Empty(t, miss.Region)
}
