package backend

import (
	"encoding/json"
	"strconv"

	"footprint/internal/domain/entity"
	"footprint/internal/util"
)

// Fallback assets and labels for list items the backend under-specifies.
const (
	defaultAttractionImage  = "/images/default-attraction.jpg"
	defaultDestinationImage = "/images/default-destination.jpg"

	unknownAttractionName  = "未知景点"
	unknownDestinationName = "未知地点"
	unknownCityName        = "未知城市"
)

// flexString decodes a JSON string, number or null into a string, since the
// backend is not consistent about scalar types.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""

		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())

	return nil
}

// extractList unwraps a backend list response: a bare array is used
// directly, otherwise a `list` field, otherwise a `data` field, otherwise
// the result is empty.
func extractList(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err == nil {
		return items
	}

	var wrapped struct {
		List json.RawMessage `json:"list"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil
	}

	if len(wrapped.List) > 0 {
		if err := json.Unmarshal(wrapped.List, &items); err == nil {
			return items
		}
	}
	if len(wrapped.Data) > 0 {
		if err := json.Unmarshal(wrapped.Data, &items); err == nil {
			return items
		}
	}

	return nil
}

// rawPlace covers every field name the backend has been seen using for a
// point of interest.
type rawPlace struct {
	ID       flexString `json:"id"`
	AltID    flexString `json:"_id"`
	Name     string     `json:"name"`
	Title    string     `json:"title"`
	Image    string     `json:"image"`
	Cover    string     `json:"cover"`
	Picture  string     `json:"picture"`
	Tags     flexString `json:"tags"`
	Category flexString `json:"category"`
	Distance flexString `json:"distance"`
}

func (p rawPlace) id() string {
	if p.ID != "" {
		return string(p.ID)
	}
	if p.AltID != "" {
		return string(p.AltID)
	}

	return util.GenerateID()
}

func (p rawPlace) name(fallback string) string {
	if p.Name != "" {
		return p.Name
	}
	if p.Title != "" {
		return p.Title
	}

	return fallback
}

func (p rawPlace) image(fallback string) string {
	switch {
	case p.Image != "":
		return p.Image
	case p.Cover != "":
		return p.Cover
	case p.Picture != "":
		return p.Picture
	}

	return fallback
}

func (p rawPlace) tags() string {
	if p.Tags != "" {
		return string(p.Tags)
	}

	return string(p.Category)
}

// normalizeAttractions maps raw list items to the uniform attraction shape.
// Items that are not JSON objects are dropped.
func normalizeAttractions(items []json.RawMessage) []entity.Attraction {
	attractions := make([]entity.Attraction, 0, len(items))
	for _, item := range items {
		var place rawPlace
		if err := json.Unmarshal(item, &place); err != nil {
			continue
		}

		attractions = append(attractions, entity.Attraction{
			ID:       place.id(),
			Name:     place.name(unknownAttractionName),
			Image:    place.image(defaultAttractionImage),
			Tags:     place.tags(),
			Distance: string(place.Distance),
		})
	}

	return attractions
}

// normalizeDestinations maps raw list items to the uniform destination shape.
func normalizeDestinations(items []json.RawMessage) []entity.Destination {
	destinations := make([]entity.Destination, 0, len(items))
	for _, item := range items {
		var place rawPlace
		if err := json.Unmarshal(item, &place); err != nil {
			continue
		}

		destinations = append(destinations, entity.Destination{
			ID:       place.id(),
			Name:     place.name(unknownDestinationName),
			Image:    place.image(defaultDestinationImage),
			Tags:     place.tags(),
			Distance: string(place.Distance),
		})
	}

	return destinations
}

// normalizeSchedule maps raw itinerary stops to the uniform schedule shape.
func normalizeSchedule(items []json.RawMessage) []entity.ScheduleItem {
	schedule := make([]entity.ScheduleItem, 0, len(items))
	for _, item := range items {
		var place rawPlace
		if err := json.Unmarshal(item, &place); err != nil {
			continue
		}

		schedule = append(schedule, entity.ScheduleItem{
			ID:       place.id(),
			Name:     place.name(unknownAttractionName),
			Image:    place.image(defaultAttractionImage),
			Tags:     place.tags(),
			Distance: string(place.Distance),
		})
	}

	return schedule
}

// rawCity covers the field names the geocoder may use for the city label,
// in priority order: city, name, formattedAddress, address.
type rawCity struct {
	City             string     `json:"city"`
	Name             string     `json:"name"`
	FormattedAddress string     `json:"formattedAddress"`
	Address          string     `json:"address"`
	Province         string     `json:"province"`
	District         string     `json:"district"`
	Township         string     `json:"township"`
	Street           string     `json:"street"`
	StreetNumber     flexString `json:"streetNumber"`
	Adcode           flexString `json:"adcode"`
	CityCode         flexString `json:"cityCode"`
}

func (c rawCity) cityName() string {
	switch {
	case c.City != "":
		return c.City
	case c.Name != "":
		return c.Name
	case c.FormattedAddress != "":
		return c.FormattedAddress
	case c.Address != "":
		return c.Address
	}

	return unknownCityName
}

// parseLocation builds a Location from a geocoder response, keyed to the fix
// it was resolved for. The raw payload is preserved opaquely in Detail.
func parseLocation(fix entity.GeoFix, raw json.RawMessage) *entity.Location {
	var city rawCity
	// A malformed body still yields a usable entry with the unknown-city label.
	_ = json.Unmarshal(raw, &city)

	return &entity.Location{
		Latitude:         fix.Latitude,
		Longitude:        fix.Longitude,
		City:             city.cityName(),
		Province:         city.Province,
		District:         city.District,
		Township:         city.Township,
		Street:           city.Street,
		StreetNumber:     string(city.StreetNumber),
		Adcode:           string(city.Adcode),
		CityCode:         string(city.CityCode),
		FormattedAddress: city.FormattedAddress,
		Detail:           raw,
	}
}

// rawPlan tolerates the shifting field names of generated itineraries.
type rawPlan struct {
	ID    flexString `json:"id"`
	AltID flexString `json:"_id"`
	Title string     `json:"title"`
	City  string     `json:"city"`
	Tags  flexString `json:"tags"`
	Days  []struct {
		Day      int             `json:"day"`
		Schedule json.RawMessage `json:"schedule"`
	} `json:"days"`
}

func parsePlan(raw json.RawMessage) *entity.Plan {
	var rp rawPlan
	_ = json.Unmarshal(raw, &rp)

	plan := &entity.Plan{
		Title: rp.Title,
		City:  rp.City,
		Tags:  string(rp.Tags),
	}

	switch {
	case rp.ID != "":
		plan.ID = string(rp.ID)
	case rp.AltID != "":
		plan.ID = string(rp.AltID)
	default:
		plan.ID = util.GenerateID()
	}

	for i, day := range rp.Days {
		number := day.Day
		if number == 0 {
			number = i + 1
		}
		plan.Days = append(plan.Days, entity.PlanDay{
			Day:      number,
			Schedule: normalizeSchedule(extractList(day.Schedule)),
		})
	}

	return plan
}

// rawPostcard tolerates the shifting field names of generated postcards.
type rawPostcard struct {
	ID     flexString `json:"id"`
	AltID  flexString `json:"_id"`
	Title  string     `json:"title"`
	Image  string     `json:"image"`
	Cover  string     `json:"cover"`
	URL    string     `json:"url"`
	Type   string     `json:"type"`
	Source string     `json:"source"`
}

func parsePostcard(raw json.RawMessage) *entity.Postcard {
	var rp rawPostcard
	_ = json.Unmarshal(raw, &rp)

	postcard := &entity.Postcard{
		Title: rp.Title,
	}

	switch {
	case rp.ID != "":
		postcard.ID = string(rp.ID)
	case rp.AltID != "":
		postcard.ID = string(rp.AltID)
	default:
		postcard.ID = util.GenerateID()
	}

	switch {
	case rp.Image != "":
		postcard.Image = rp.Image
	case rp.Cover != "":
		postcard.Image = rp.Cover
	default:
		postcard.Image = rp.URL
	}

	if rp.Source != "" {
		postcard.Source = rp.Source
	} else {
		postcard.Source = rp.Type
	}

	return postcard
}

// formatCoord renders a coordinate for a query string without float noise.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
