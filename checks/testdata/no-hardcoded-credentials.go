package testdata

const dbPassword = "hunter2" // Noncompliant

var (
	user    = "admin"
	passwd  = ""
	userPWD = "s3cret" // Noncompliant
)

func connect() {
	pwd := "letmein" // Noncompliant
	password := readPassword()
	var token = "not a credential"
	password = `raw` // Noncompliant
	_, _ = password, token
	_, _ = user, passwd
}

func readPassword() string { return "" }
