package types

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Sessions
	CookieName       string `envconfig:"SESSION_COOKIE_NAME" default:"healthlock_session"`
	SessionMaxAgeSec int    `envconfig:"SESSION_MAX_AGE_SEC" default:"86400"` // 1 day
	MaxSessions      int    `envconfig:"MAX_SESSIONS" default:"1000"`
	SeedDemoData     bool   `envconfig:"SEED_DEMO_DATA" default:"true"`

	// Cookie encryption keys (base64 encoded). Random keys are generated
	// at startup when unset, which invalidates sessions on restart.
	// openssl rand -base64 32
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes

	// Audit origin. When AuditRequestOrigin is false every entry carries a
	// synthetic IP and SimulatedLocation and is flagged as simulated.
	AuditRequestOrigin bool   `envconfig:"AUDIT_REQUEST_ORIGIN" default:"false"`
	SimulatedLocation  string `envconfig:"SIMULATED_LOCATION" default:"San Francisco, CA"`

	QRImageSize int `envconfig:"QR_IMAGE_SIZE" default:"300"`

	Patient  PatientProfile `envconfig:"PATIENT"`
	Accessor Accessor       `envconfig:"ACCESSOR"`
}

// PatientProfile is the fixed demo identity embedded in every QR payload.
type PatientProfile struct {
	Name      string `envconfig:"NAME" default:"Dr. Sarah Johnson" json:"name"`
	ID        string `envconfig:"ID" default:"HLK-001" json:"id"`
	Age       int    `envconfig:"AGE" default:"34" json:"age"`
	BloodType string `envconfig:"BLOOD_TYPE" default:"A+" json:"bloodType"`
	Phone     string `envconfig:"PHONE" default:"+1-555-0123" json:"phone"`
	Email     string `envconfig:"EMAIL" default:"sarah.johnson@email.com" json:"email"`
}

// Accessor is who shows up when a token scan is simulated.
type Accessor struct {
	DoctorName   string `envconfig:"DOCTOR_NAME" default:"Dr. Michael Chen"`
	HospitalName string `envconfig:"HOSPITAL_NAME" default:"San Francisco General Hospital"`
}

func DefaultPatientProfile() PatientProfile {
	return PatientProfile{
		Name:      "Dr. Sarah Johnson",
		ID:        "HLK-001",
		Age:       34,
		BloodType: "A+",
		Phone:     "+1-555-0123",
		Email:     "sarah.johnson@email.com",
	}
}

func DefaultAccessor() Accessor {
	return Accessor{
		DoctorName:   "Dr. Michael Chen",
		HospitalName: "San Francisco General Hospital",
	}
}
