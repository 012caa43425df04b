package cpu

import "github.com/strided-ml/strided/internal/buffer"

// Matmul multiplies compact 2D matrices: a is m×n, b is n×p, out is m×p.
// out[i,j] = Σ_k a[i,k]*b[k,j] via the standard triple loop; every output
// cell is written from a fresh accumulator, so out may hold garbage on
// entry. out must not alias a or b.
func (cpu *Backend) Matmul(a, b, out *buffer.Buffer, m, n, p int) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := 0; i < m; i++ {
		for j := 0; j < p; j++ {
			sum := float32(0)
			for k := 0; k < n; k++ {
				sum += av[i*n+k] * bv[k*p+j]
			}
			ov[i*p+j] = sum
		}
	}
}

// MatmulTiled multiplies matrices stored in the 4D blocked layout
// [rows/Tile][cols/Tile][Tile][Tile]: a holds an m×n matrix, b an n×p
// matrix, out an m×p matrix, and m, n, p must all be exact multiples of
// Tile (caller contract; there is no remainder handling).
//
// Each output block (i,j) is accumulated in a scratch tile across the k
// loop and written back once, so the working set of the inner loop stays
// cache-resident. The a and b blocks are copied into kernel-owned scratch
// tiles before each micro-kernel call, which is what guarantees dotTile its
// non-aliased, tile-aligned operands.
func (cpu *Backend) MatmulTiled(a, b, out *buffer.Buffer, m, n, p int) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	var tileA, tileB, acc [Tile * Tile]float32
	for i := 0; i < m/Tile; i++ {
		for j := 0; j < p/Tile; j++ {
			acc = [Tile * Tile]float32{}
			for k := 0; k < n/Tile; k++ {
				// Blocks (i,k) of a and (k,j) of b are contiguous
				// Tile*Tile runs in the 4D layout.
				aBase := i*n*Tile + k*Tile*Tile
				bBase := k*p*Tile + j*Tile*Tile
				copy(tileA[:], av[aBase:aBase+Tile*Tile])
				copy(tileB[:], bv[bBase:bBase+Tile*Tile])
				dotTile(&tileA, &tileB, &acc)
			}
			oBase := i*p*Tile + j*Tile*Tile
			copy(ov[oBase:oBase+Tile*Tile], acc[:])
		}
	}
}

// dotTile multiplies two Tile×Tile blocks and adds the product into out:
// out[i,j] += a[i,k]*b[k,j]. It accumulates into out's existing contents;
// the caller zeroes the accumulator once before the first k step, never
// between steps.
//
// The three arguments must not overlap and must satisfy the tile alignment
// guarantee; both hold by construction because MatmulTiled passes distinct
// kernel-owned arrays. Fixed trip counts over fixed-size arrays keep the
// inner loop fully unrollable and vectorizable.
func dotTile(a, b, out *[Tile * Tile]float32) {
	for i := 0; i < Tile; i++ {
		for k := 0; k < Tile; k++ {
			aik := a[i*Tile+k]
			for j := 0; j < Tile; j++ {
				out[i*Tile+j] += aik * b[k*Tile+j]
			}
		}
	}
}
