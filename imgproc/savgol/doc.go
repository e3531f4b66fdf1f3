// Package savgol generates 2D Savitzky-Golay convolution kernels and applies
// them to grayscale planes.
//
// A [Kernel] fits a polynomial of configurable horizontal and vertical degree,
// in the least-squares sense, to a width×height grid of samples and stores the
// weights that evaluate the fit at a chosen origin cell. Dotting the weights
// with a pixel neighborhood yields the smoothed value at that origin.
//
// The design matrix is triangularized once with Givens rotations. Every
// rotation is logged, so moving the origin (as border pixels require) only
// replays the log against a unit impulse and back-substitutes:
//
//	k, err := savgol.NewKernel(image.Pt(5, 5), image.Pt(2, 2), 2, 2)
//	if err != nil {
//		return err
//	}
//	weights := k.Values()             // centered kernel
//	k.RecalcForOrigin(image.Pt(0, 2)) // left-border kernel, no refactorization
//
// [Kernel.RecalcDerivative] produces weights for partial derivatives of the
// fit instead of its value.
//
// # Filtering
//
// [FilterPlane], [FilterGray] and [FilterImage] smooth a whole image. Inner
// pixels use the centered kernel; pixels closer to an edge than half the
// window use a kernel whose origin is shifted toward that edge, so every
// output pixel is fitted over a full window that lies inside the image.
//
// # Debug assertions
//
// [Kernel.RecalcForOrigin] performs no bounds checks. Build with
// -tags savgoldebug to turn on assertions for origin bounds and zero pivots.
package savgol
