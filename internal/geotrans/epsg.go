package geotrans

// EPSG codes of the geographic CRSs this tool is most often run with.
const (
	WGS84   = 4326 // WGS 84, GPS latitude/longitude
	JGD2000 = 4612 // Japanese Geodetic Datum 2000
	JGD2011 = 6668 // Japanese Geodetic Datum 2011
	Tokyo   = 4301 // Tokyo datum, the former Japanese datum
)

// Known is the default metadata lookup table used by the "name" and
// "reverse" label strategies.
var Known = map[int]string{
	WGS84:   "WGS 84",
	JGD2000: "JGD2000",
	JGD2011: "JGD2011",
	Tokyo:   "Tokyo",
}
