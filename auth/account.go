package auth

import (
	"fmt"
	"unicode"

	"scribe-cli/term"
	"scribe-cli/types"

	"github.com/fatih/color"
)

const (
	authRegisterOption = "Create an account"
	authSignInOption   = "Sign in"
)

func promptInitialAuth() error {
	selected, err := term.SelectFromList("👋 Hey there!\nYou're not signed in on this computer.\nWhat would you like to do?", []string{authSignInOption, authRegisterOption})
	if err != nil {
		return fmt.Errorf("error selecting auth option: %v", err)
	}

	switch selected {
	case authRegisterOption:
		return PromptRegister()
	case authSignInOption:
		return PromptSignIn()
	}

	return nil
}

// PromptRegister walks through account creation. On success it shows a
// one-shot notice and drops into the sign-in flow, since registration alone
// doesn't establish a session.
func PromptRegister() error {
	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		return fmt.Errorf("error prompting username: %v", err)
	}

	email, err := term.GetRequiredUserStringInput("Your email:")
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	// same rule the server enforces; catches the common case without a round trip
	if err := CheckPasswordStrength(password); err != nil {
		return err
	}

	term.StartSpinner("🌟 Creating account...")
	apiErr := apiClient.Register(types.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error creating account: %v", apiErr.Msg)
	}

	// best effort; login responses won't tell us the username again
	if err := RememberRegistration(email, username); err != nil {
		term.NotifyWarning("couldn't remember username locally: %v", err)
	}

	term.NotifySuccess("account created, you can sign in now")

	// registration doesn't establish a session; drop straight into sign-in
	// with the email prefilled
	return promptSignInWithDefault(email)
}

// PromptSignIn prompts for credentials and establishes a session.
func PromptSignIn() error {
	return promptSignInWithDefault("")
}

func promptSignInWithDefault(defaultEmail string) error {
	email, err := term.GetUserStringInputWithDefault("Your email:", defaultEmail)
	if err != nil {
		return fmt.Errorf("error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		return fmt.Errorf("error prompting password: %v", err)
	}

	return signIn(email, password)
}

func signIn(email, password string) error {
	term.StartSpinner("")
	res, apiErr := apiClient.SignIn(types.SignInRequest{
		Email:    email,
		Password: password,
	})
	term.StopSpinner()

	if apiErr != nil {
		return fmt.Errorf("error signing in: %v", apiErr.Msg)
	}

	displayName := DisplayNameForEmail(email)

	err := Establish(res.AccessToken, displayName)
	if err != nil {
		return fmt.Errorf("error storing session: %v", err)
	}

	fmt.Printf("✅ Signed in as %s\n", color.New(color.Bold, term.ColorHiGreen).Sprint(displayName))
	fmt.Println()

	term.PrintCmds("", "browse", "posts", "new")

	return nil
}

// CheckPasswordStrength mirrors the server's registration rule: at least 8
// characters with at least one letter and one digit.
func CheckPasswordStrength(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	hasLetter := false
	hasDigit := false
	for _, ch := range password {
		if unicode.IsLetter(ch) {
			hasLetter = true
		}
		if unicode.IsDigit(ch) {
			hasDigit = true
		}
	}

	if !hasLetter {
		return fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	return nil
}
