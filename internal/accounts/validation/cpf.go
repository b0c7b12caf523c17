package validation

// ValidCPF reports whether s is a well-formed CPF (the Brazilian national
// taxpayer identifier). Both the bare 11-digit form and the conventional
// 000.000.000-00 formatting are accepted.
//
// A CPF carries two check digits. Each is a weighted sum over the preceding
// digits, taken mod 11: digit = (sum*10 % 11) % 10. Sequences of a single
// repeated digit satisfy the arithmetic but are reserved, so they are
// rejected explicitly.
func ValidCPF(s string) bool {
	digits := make([]int, 0, 11)
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-':
			// separator, ignore
		default:
			return false
		}
	}
	if len(digits) != 11 {
		return false
	}

	uniform := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return false
	}

	return digits[9] == checkDigit(digits[:9]) && digits[10] == checkDigit(digits[:10])
}

// checkDigit computes the CPF check digit for the given digit prefix.
// Weights run from len(prefix)+1 down to 2.
func checkDigit(prefix []int) int {
	sum := 0
	for i, d := range prefix {
		sum += d * (len(prefix) + 1 - i)
	}
	return (sum * 10 % 11) % 10
}
