package constants

// Cấp độ người dùng (profile level)
const (
	LEVEL_NORMAL      = "normal"
	LEVEL_WRITER      = "writer"
	LEVEL_ADMIN       = "admin"
	LEVEL_SUPER_ADMIN = "super_admin"
)

var UserLevels = []string{LEVEL_NORMAL, LEVEL_WRITER, LEVEL_ADMIN, LEVEL_SUPER_ADMIN}

// Capabilities — mỗi level được map sang một tập quyền, check 1 lần mỗi request
const (
	CAN_MANAGE_USERS    = "can_manage_users"
	CAN_MANAGE_TOURS    = "can_manage_tours"
	CAN_MANAGE_BOOKINGS = "can_manage_bookings"
	CAN_MANAGE_DISCOUNT = "can_manage_discounts"
	CAN_MANAGE_CONTENT  = "can_manage_content"
	CAN_VIEW_REPORTS    = "can_view_financial_reports"
)

// Booking status
const (
	BOOKING_PENDING   = "PENDING"
	BOOKING_CONFIRMED = "CONFIRMED"
	BOOKING_CANCELLED = "CANCELLED"
	BOOKING_COMPLETED = "COMPLETED"
	BOOKING_REFUNDED  = "REFUNDED"
)

// Seat status per tour leg
const (
	SEAT_AVAILABLE = "AVAILABLE"
	SEAT_HELD      = "HELD"
	SEAT_BOOKED    = "BOOKED"
)

// Tour legs
const (
	LEG_DEPARTURE = "DEPARTURE"
	LEG_RETURN    = "RETURN"
)

// Tour types
const (
	TOUR_ONE_WAY    = "one_way"
	TOUR_ROUND_TRIP = "round_trip"
	TOUR_MULTI_CITY = "multi_city"
	TOUR_PACKAGE    = "package"
)

var TourTypes = []string{TOUR_ONE_WAY, TOUR_ROUND_TRIP, TOUR_MULTI_CITY, TOUR_PACKAGE}

// Discount
const (
	DISCOUNT_PERCENTAGE = "percentage"
	DISCOUNT_FIXED      = "fixed"

	APPLY_ALL_TOURS      = "all_tours"
	APPLY_SPECIFIC_TOURS = "specific_tours"
	APPLY_CATEGORIES     = "tour_categories"
)

// Content status
const (
	CONTENT_DRAFT     = "draft"
	CONTENT_PUBLISHED = "published"
	CONTENT_ARCHIVED  = "archived"

	ACCESS_PUBLIC  = "public"
	ACCESS_PRIVATE = "private"
	ACCESS_PREMIUM = "premium"
)

// Thông báo lỗi dùng chung
const (
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống, vui lòng thử lại sau"
	ERROR_PARSE_DATA_TO_LOCALS = "PARSE_DATA_TO_LOCALS_FAIL"
	DATA_INPUT_IS_NOT_NUMBER   = "Tham số phải là số"
	MISSING_LOGIN_INPUT        = "Thiếu email hoặc mật khẩu"
	INVALID_EMAIL              = "Email không tồn tại"
	INVALID_PASSWORD           = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE         = "Tài khoản đã bị khóa"
	FORBIDDEN                  = "Không có quyền thực hiện thao tác này"
	TOUR_NOT_FOUND             = "Tour không tồn tại"
	BOOKING_NOT_FOUND          = "Không tìm thấy đặt chỗ"
	DISCOUNT_NOT_FOUND         = "Mã giảm giá không hợp lệ"
)
