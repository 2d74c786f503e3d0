package data

// Column names of the published inspection exports. The test export has
// the same columns minus the outcome label.
const (
	ColSerialNumber       = "RESTAURANT_SERIAL_NUMBER"
	ColPermitNumber       = "RESTAURANT_PERMIT_NUMBER"
	ColName               = "RESTAURANT_NAME"
	ColLocation           = "RESTAURANT_LOCATION"
	ColCity               = "RESTAURANT_CITY"
	ColState              = "RESTAURANT_STATE"
	ColZip                = "RESTAURANT_ZIP"
	ColCoordinate         = "LOCATION_1"
	ColCurrentGrade       = "CURRENT_GRADE"
	ColCurrentDemerits    = "CURRENT_DEMERITS"
	ColEmployeeCount      = "EMPLOYEE_COUNT"
	ColMedianEmployeeAge  = "MEDIAN_EMPLOYEE_AGE"
	ColMedianTenure       = "MEDIAN_EMPLOYEE_TENURE"
	ColInspectionTime     = "INSPECTION_TIME"
	ColInspectionType     = "INSPECTION_TYPE"
	ColInspectionDemerits = "INSPECTION_DEMERITS"
	ColViolationsRaw      = "VIOLATIONS_RAW"
	ColFirstViolation     = "FIRST_VIOLATION"
	ColSecondViolation    = "SECOND_VIOLATION"
	ColThirdViolation     = "THIRD_VIOLATION"
	ColRecordUpdated      = "RECORD_UPDATED"
	ColOutcome            = "NEXT_INSPECTION_GRADE_C_OR_BELOW"
)

// Columns derived by normalization.
const (
	ColLatitude  = "LATITUDE"
	ColLongitude = "LONGITUDE"
	ColZip5      = "ZIP_5"
	ColDate      = "DATE"
	ColYear      = "YEAR"
	ColMonth     = "MONTH"
	ColHour      = "HOUR"
)
