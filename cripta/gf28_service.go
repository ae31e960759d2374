package cripta

// GF28Service предоставляет функционал для работы с полем GF(2⁸)
type GF28Service struct {
	modulus byte
}

// NewGF28Service создает сервис для поля GF(2⁸) с заданным модулем.
// Модуль хранится без старшего бита (x^8 подразумевается).
func NewGF28Service(modulus byte) *GF28Service {
	return &GF28Service{modulus: modulus}
}

// NewKalynaGF28Service возвращает поле с полиномом x^8 + x^4 + x^3 + x^2 + 1
func NewKalynaGF28Service() *GF28Service {
	return NewGF28Service(KalynaModulus)
}

// Add складывает два элемента из GF(2⁸) (побитовое XOR)
func (s *GF28Service) Add(a, b byte) byte {
	return a ^ b
}

// Multiply умножает два элемента из GF(2⁸)
func (s *GF28Service) Multiply(a, b byte) byte {
	var result byte = 0
	var highBit byte = 0x80

	for i := 0; i < 8; i++ {
		if (b & 1) != 0 {
			result ^= a
		}

		carry := (a & highBit) != 0
		a <<= 1

		if carry {
			a ^= s.modulus
		}

		b >>= 1
	}

	return result
}

// MultiplyColumn умножает матрицу 8x8 на столбец из 8 байт:
// out[row] = XOR по b от in[b]*matrix[row][b]
func (s *GF28Service) MultiplyColumn(matrix *[8][8]byte, column [8]byte) [8]byte {
	var out [8]byte
	for row := 0; row < 8; row++ {
		var product byte
		for b := 0; b < 8; b++ {
			product = s.Add(product, s.Multiply(column[b], matrix[row][b]))
		}
		out[row] = product
	}
	return out
}
