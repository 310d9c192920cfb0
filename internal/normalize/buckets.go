package normalize

import "strconv"

// Screen size buckets, in inches.
const (
	Screen13to14 = "13-14"
	Screen15to16 = "15-16"
	Screen17Plus = "17+"
)

// Weight buckets, in kilograms.
const (
	WeightUnder15 = "<1.5kg"
	Weight15to20  = "1.5-2.0kg"
	WeightOver20  = ">2.0kg"
)

// Battery life buckets, in hours.
const (
	BatteryUnder6 = "<6h"
	Battery6to10  = "6-10h"
	Battery10Plus = "10h+"
)

// Refresh240Plus collects every panel at or above 240Hz.
const Refresh240Plus = "240+"

var (
	ScreenBucketOrder  = []string{Screen13to14, Screen15to16, Screen17Plus}
	WeightBucketOrder  = []string{WeightUnder15, Weight15to20, WeightOver20}
	BatteryBucketOrder = []string{BatteryUnder6, Battery6to10, Battery10Plus}
	RefreshBucketOrder = []string{"60", "90", "120", "144", "165", "180", Refresh240Plus}
)

// ScreenBucket: [0,15) "13-14", [15,17) "15-16", [17,∞) "17+".
func ScreenBucket(inches float64) string {
	switch {
	case inches < 15:
		return Screen13to14
	case inches < 17:
		return Screen15to16
	}
	return Screen17Plus
}

// WeightBucket: [0,1.5) "<1.5kg", [1.5,2.0] "1.5-2.0kg", (2.0,∞) ">2.0kg".
func WeightBucket(kg float64) string {
	switch {
	case kg < 1.5:
		return WeightUnder15
	case kg <= 2.0:
		return Weight15to20
	}
	return WeightOver20
}

// BatteryBucket: [0,6) "<6h", [6,10] "6-10h", (10,∞) "10h+".
func BatteryBucket(hours float64) string {
	switch {
	case hours < 6:
		return BatteryUnder6
	case hours <= 10:
		return Battery6to10
	}
	return Battery10Plus
}

// RefreshBucket returns "240+" at or above 240Hz, else the rate itself.
func RefreshBucket(hz int) string {
	if hz >= 240 {
		return Refresh240Plus
	}
	return strconv.Itoa(hz)
}
