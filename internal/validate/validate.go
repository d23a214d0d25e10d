package validate

import (
	"errors"
	"fmt"
)

const (
	MaxPasswordLen = 72
	MaxLoginLen    = 64
)

func Account(login, password, name string) error {
	var errs = []error{}

	errs = append(errs, Login(login))

	errs = append(errs, Password(password))

	errs = append(errs, DisplayName(name))

	return errors.Join(errs...)
}

func Password(password string) error {
	l := len(password)
	switch {
	case l == 0:
		return errors.New("empty password")
	case l > MaxPasswordLen:
		return fmt.Errorf("password too long; max %d characters", MaxPasswordLen)
	}
	return nil
}

func Login(login string) error {
	if l := len(login); l == 0 {
		return errors.New("empty login")
	} else if l > MaxLoginLen {
		return fmt.Errorf("login too long; max %d characters", MaxLoginLen)
	}
	// Platform-generated message senders are prefixed with '@'; real logins
	// must not collide with them.
	if login[0] == '@' {
		return errors.New("login must not start with '@'")
	}
	return nil
}

func DisplayName(name string) error {
	if len(name) > MaxLoginLen {
		return fmt.Errorf("name too long; max %d characters", MaxLoginLen)
	}
	return nil
}
